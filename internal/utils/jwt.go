package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiryClaim is returned when a token carries no usable "exp" claim.
var ErrNoExpiryClaim = errors.New("token has no expiry claim")

// ExpiryFromJWT returns the "exp" claim of tokenString.
//
// The signature is NOT verified: the client holds no key and only uses the
// claim to decide when to refresh. Never use the result for authorization.
//
// Example usage:
//
//	exp, err := utils.ExpiryFromJWT(accessToken)
//	if err != nil || time.Until(exp) < buffer {
//	    // refresh
//	}
func ExpiryFromJWT(tokenString string) (time.Time, error) {
	claims, err := unverifiedClaims(tokenString)
	if err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiryClaim
	}

	return exp.Time, nil
}

// ParseUserIDFromJWT returns the "sub" claim of tokenString as an int64.
// Like [ExpiryFromJWT] it does not verify the signature.
func ParseUserIDFromJWT(tokenString string) (int64, error) {
	claims, err := unverifiedClaims(tokenString)
	if err != nil {
		return 0, err
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func unverifiedClaims(tokenString string) (jwt.MapClaims, error) {
	if tokenString == "" {
		return nil, errors.New("empty token")
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("error parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
