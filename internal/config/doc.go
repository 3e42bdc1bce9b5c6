// Package config loads hheat's user settings.
//
// Settings live in a TOML file under the user's home directory:
//
//	~/.hheat/conf.toml
//
//	username = "me@example.com"
//	password = "correct horse battery staple"
//	# endpoint = "https://beekeeper.hivehome.com/1.0/"
//
// username and password are required. endpoint is optional and may also be
// set with the HHEAT_ENDPOINT environment variable, which takes precedence.
//
// The session token cache lives next to the config file (~/.hheat/token);
// TokenPath returns its location.
package config
