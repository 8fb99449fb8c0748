package dto

type SignupInput struct {
	Email    string
	Password string
	Confirm  string
}

type LoginInput struct {
	Email    string
	Password string
}

type StatusOutput struct {
	LoggedIn   bool
	Email      string
	HasAccount bool
}
