package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`

	// Empty custom sets fall back to the built-in set of the class.
	CustomUppercase string `json:"custom_uppercase"`
	CustomLowercase string `json:"custom_lowercase"`
	CustomDigits    string `json:"custom_digits"`
	CustomSymbols   string `json:"custom_symbols"`

	BeginWithLetter bool `json:"begin_with_letter"`
	NoDuplicates    bool `json:"no_duplicates"`
	NoSequential    bool `json:"no_sequential"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
