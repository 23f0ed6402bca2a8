package models

// Settings is the small persisted user-preference record.
//
// Unknown fields present in the settings file are preserved by the
// settings store; only the fields below are interpreted.
type Settings struct {
	LastDirectory string `json:"last_directory"`
}
