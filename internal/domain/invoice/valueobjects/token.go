package valueobjects

import "strings"

// Token identifies a settlement token by its symbol.
type Token string

const (
	TokenNative Token = "WVL"
	TokenUSDC   Token = "USDC"
	TokenUSDT   Token = "USDT"
	TokenDAI    Token = "DAI"
)

func NewToken(symbol string) Token {
	return Token(strings.ToUpper(strings.TrimSpace(symbol)))
}

func (t Token) IsValid() bool {
	switch t {
	case TokenNative, TokenUSDC, TokenUSDT, TokenDAI:
		return true
	default:
		return false
	}
}

// IsNative reports whether transfers in this token also consume it as gas.
func (t Token) IsNative() bool {
	return t == TokenNative
}

func (t Token) String() string {
	return string(t)
}
