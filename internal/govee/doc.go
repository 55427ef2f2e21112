// Package govee is a client for the Govee developer cloud API.
//
// It covers the two endpoints this tool needs: enumerating the devices
// on the account (GET /devices) and sending a control command to one
// device (PUT /devices/control). Authentication is a per-account API
// key sent in the Govee-API-Key header.
//
// The package also provides constructors for the four supported
// control commands (power, brightness, color, color temperature),
// which clamp or validate their inputs to the ranges the API accepts.
//
// Errors are kind-tagged (*APIError) so callers can tell an
// authentication problem from a rate limit or a transport failure.
// The client never retries a control send; device commands are
// idempotent, so retrying is left to the user.
package govee
