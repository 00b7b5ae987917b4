// Package http implements the REST surface of the development backend.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, response compression and bearer authentication are handled
// here before requests reach [devserver.Service]. Errors are written as
// {"message": "..."} bodies, the shape the client reads.
package http
