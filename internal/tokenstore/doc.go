// Package tokenstore persists the OAuth token obtained from the Dribbble
// authorization-code flow.
//
// Three backends with different tradeoffs:
//   - File: token JSON on the local filesystem, atomic writes, 0600 permissions
//   - Env: read-only access token from an environment variable
//   - Keyring: OS-native credential storage via the system keyring
//
// The login flow requires a writable backend (file or keyring); env suits
// deployments where the token is provisioned externally.
package tokenstore
