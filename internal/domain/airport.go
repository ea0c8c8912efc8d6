package domain

type Airport struct {
	Base
	Name string
	Code string
	City string
}
