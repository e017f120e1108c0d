package utils

import "time"

// CalculateAge returns completed years since birthday.
func CalculateAge(birthday time.Time) int {
	today := time.Now()
	age := today.Year() - birthday.Year()
	if today.Before(birthday.AddDate(age, 0, 0)) {
		age--
	}
	return age
}
