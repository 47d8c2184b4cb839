package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	Database  DatabaseConfigs
	ApiServer ServerConfigs
	Auth      AuthConfigs
	Session   SessionConfigs
	Redis     RedisConfigs
	Search    SearchConfigs
	Mission   MissionConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string

	MaxLimit     int
	DefaultLimit int

	AllowCORS []string
}

func (c ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type AuthConfigs struct {
	TokenSecret  string
	AccessToken  TokenConfigs
	RefreshToken TokenConfigs

	// AdminAddresses is the allow-list of wallet addresses which are granted
	// the admin scope regardless of their stored role. It is injected here so
	// the role verifier never reads ambient process state.
	AdminAddresses []string
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type SessionConfigs struct {
	Secret string
	Name   string
}

type RedisConfigs struct {
	Addr string
}

type SearchConfigs struct {
	IndexDir string
}

type MissionConfigs struct {
	// PrivilegedCreators may create points-only missions with no token
	// backing. Every other address must back the point pool 1:1 with tokens.
	PrivilegedCreators []string

	MaxTaskLinks int
}
