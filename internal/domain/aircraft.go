package domain

import "time"

type Aircraft struct {
	Base
	ModelName       string
	Code            string
	Seats           int16
	Country         string
	ManufactureDate time.Time
}
