package util

import (
	"crypto/rand"
	"math/big"
)

const codeDigits = "0123456789"

// GenerateCode 生成 n 位数字验证码
func GenerateCode(n int) string {
	code := make([]byte, n)
	for i := range code {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeDigits))))
		if err != nil {
			code[i] = codeDigits[0]
			continue
		}
		code[i] = codeDigits[idx.Int64()]
	}
	return string(code)
}
