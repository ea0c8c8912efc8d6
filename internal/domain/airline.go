package domain

type Airline struct {
	Base
	Name    string
	Country string
}
