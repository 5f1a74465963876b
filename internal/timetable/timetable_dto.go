package timetable

type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings"`
}

type EntryResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Day     string `json:"day"`
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Class   string `json:"class"`
	Faculty string `json:"faculty"`
}
