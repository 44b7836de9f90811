package common

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

func IsValidURL(input string) bool {
	_, err := url.ParseRequestURI(input)
	return err == nil
}

func DecodeHex(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}

	return hex.DecodeString(s)
}

func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func MulPercentage(value *big.Int, percentage uint64) *big.Int {
	res := new(big.Int).Mul(value, new(big.Int).SetUint64(percentage))

	return res.Div(res, big.NewInt(100))
}

func IsContextDoneErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// RetryForever executes fn with a constant backoff until it succeeds or ctx is done.
func RetryForever(ctx context.Context, interval time.Duration, fn func(context.Context) error) error {
	return retry.Do(ctx, retry.NewConstant(interval), func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil || IsContextDoneErr(err) {
			return err
		}

		return retry.RetryableError(err)
	})
}
