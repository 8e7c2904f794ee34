// Package cli implements the apiconfig command tree.
//
// Every command loads the layered process configuration from the persistent
// flags, the environment and an optional config file, then works on a
// single [apiconfig.APIConfig]. Run returns a process exit code:
//
//	0  success
//	2  usage or configuration error
//	4  runtime error (store, server)
package cli
