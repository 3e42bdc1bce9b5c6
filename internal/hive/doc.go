// Package hive is a client for the Hive "beekeeper" home-heating API.
//
// It covers the three calls hheat needs: logging in, listing products and
// updating the heating node. Requests are single attempts; recovering from an
// expired session token is the caller's job (see package session).
//
// # Usage Example
//
//	client := hive.NewClient()
//
//	token, err := client.Login(ctx, hive.Credentials{Username: u, Password: p})
//	if err != nil {
//	    return err
//	}
//
//	listing, err := client.Products(ctx, token)
//	if err != nil {
//	    return err
//	}
//
//	device, err := hive.FindHeating(listing)
//	if err != nil {
//	    return err
//	}
//
//	target := 20.5
//	err = client.UpdateHeating(ctx, token, device.ID, hive.HeatingUpdate{Target: &target})
//
// # Errors
//
// Every failure from the API is an *APIError carrying an ErrorType. A response
// with a 2xx status whose JSON object body contains an "error" field is still
// a failure (ErrTypeAPI); the API reports expired sessions this way.
package hive
