// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value populated by binders,
// and returns a Response. JSON responses share one envelope:
//
//	{"code":200,"message":"OK","data":{...}}
//	{"code":409,"message":"Conflict","error":"email_taken"}
//
// Errors returned as HTTPError keep their status and key; anything else is
// reported as 500 internal_server_error.
package handler
