package model

type AccessToken struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type WalletLoginRequest struct {
	Address string `json:"address"`
}

type WalletLoginResponse struct {
	Address string `json:"address"`
	Nonce   string `json:"nonce"`
}

type WalletVerifyRequest struct {
	Signature string `json:"signature"`
}

type WalletVerifyResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}
