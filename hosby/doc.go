// Package hosby implements the authenticated request pipeline of the
// Hosby backend-as-a-service client SDK.
//
// The client turns a logical operation (method, path, filters, options,
// body) into a fully authenticated wire request: it enforces the HTTPS
// policy at construction, manages the CSRF token lifecycle (fetch,
// cache, cookie synchronization, rotation), signs every request with the
// project's RSA key, and normalizes all failure modes into one error
// shape.
//
// # Construction
//
// New validates the configuration once and fails construction for
// missing credentials or an HTTPS policy violation:
//
//	client, err := hosby.New(hosby.Config{
//	    BaseURL:     "https://api.hosby.io",
//	    PrivateKey:  privateKey,
//	    APIKeyID:    "key-id",
//	    ProjectID:   "project-id",
//	    ProjectName: "myproject",
//	    UserID:      "user-id",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Configuration can also be read from a YAML file with LoadConfig, which
// applies HOSBY_* environment overrides.
//
// # Requests
//
// Request is the single dispatch primitive. Filters become repeated
// query-string parameters, query options travel as discrete headers, and
// bodies are JSON:
//
//	resp, err := client.Request(ctx, http.MethodGet, "users/find", &hosby.Params{
//	    Filters: []hosby.Filter{{Field: "name", Value: "test"}},
//	}, nil)
//
// Collection wraps Request with typed CRUD helpers:
//
//	users := hosby.NewCollection[User](client, "users")
//	found, err := users.Find(ctx, nil, nil)
//
// # CSRF tokens
//
// The token is fetched lazily from the un-scoped bootstrap endpoint on
// the first request (or eagerly via Init). Injecting a cookie store with
// WithCookieStore mirrors the token into a cookie so other processes
// sharing the store can adopt it; in-memory state wins once populated.
// Unless Config.UseSameToken is set, a rotation header on any response
// replaces the cached token.
//
// # Errors
//
// Every per-call failure is a *Error carrying the normalized
// {success:false, status, message} shape, wrapping one of the sentinel
// categories (ErrValidation, ErrSigning, ErrToken, ErrTransport) for
// errors.Is checks. Construction failures wrap ErrConfig.
package hosby
