// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential hashing and stateless auth tokens.

# Passwords

Registry passwords are stored as hex SHA-256 digests; CheckPassword
compares in constant time:

	if err := auth.CheckPassword(person.PwHash, req.Password); err != nil {
		// 401
	}

# Tokens

Tokens are HMAC-SHA256 over the person's SSN with a server-side salt, so
they can be validated without storing anything:

	token := auth.GenerateToken(ssn, cfg.TokenSalt)
	err := auth.ValidateToken(ssn, token, cfg.TokenSalt)

A client authenticates requests with the X-Auth-SSN and X-Auth-Token
headers. Rotating TOKEN_SALT invalidates every outstanding token.
*/
package auth
