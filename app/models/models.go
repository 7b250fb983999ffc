package models

type Model struct {
	Model interface{}
}

func RegisterModels() []Model {
	return []Model{
		{Model: User{}},
		{Model: Sale{}},
		{Model: Expense{}},
		{Model: Asset{}},
		{Model: Capital{}},
		{Model: Liability{}},
	}
}
