package domain

type Customer struct {
	Base
	Name     string
	Surname  string
	Email    string
	Password string
	Phone    string
	Age      int16
	City     string
	Country  string
}
