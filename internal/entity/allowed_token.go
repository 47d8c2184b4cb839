package entity

type AllowedToken struct {
	Base

	Address  string `gorm:"unique"`
	Symbol   string
	Name     string
	Decimals int
	Chain    string

	Active    bool
	CreatedBy string
}
