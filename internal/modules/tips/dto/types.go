package dto

type TipOutput struct {
	Title    string
	Category string
	Body     string
}
