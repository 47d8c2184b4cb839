package model

type AllowedToken struct {
	ID       string `json:"id"`
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
	Chain    string `json:"chain"`
	Active   bool   `json:"active"`
}

type CreateAllowedTokenRequest struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
	Chain    string `json:"chain"`
}

type CreateAllowedTokenResponse struct {
	ID string `json:"id"`
}

type GetListAllowedTokenRequest struct{}

type GetListAllowedTokenResponse struct {
	Tokens []AllowedToken `json:"tokens"`
}

type DeleteAllowedTokenRequest struct {
	ID string `json:"id"`
}

type DeleteAllowedTokenResponse struct{}
