package controllers

import (
	"net/http"
	"time"
)

func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.ParseInLocation("2006-01-02", value, time.Local)
}

// dateRangeParams membaca startDate & endDate dari query string.
// Filter hanya aktif kalau keduanya ada dan valid; selain itu
// handler memakai koleksi penuh, sama seperti perilaku lama.
func dateRangeParams(r *http.Request) (time.Time, time.Time, bool) {
	startParam := r.URL.Query().Get("startDate")
	endParam := r.URL.Query().Get("endDate")

	if startParam == "" || endParam == "" {
		return time.Time{}, time.Time{}, false
	}

	start, err := parseDateParam(startParam)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	end, err := parseDateParam(endParam)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	// endDate tanpa jam dianggap sampai akhir hari
	if end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 {
		end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}

	return start, end, true
}
