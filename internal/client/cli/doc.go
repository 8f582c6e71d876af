// Package cli provides the interactive vacancy board client.
//
// It wires configuration, local credential storage, the API adapter, the
// session store and the resource services into a REPL. Every command maps
// to a route of the board (see Navigator); protected routes go through the
// session guard before anything is fetched.
//
// Commands:
//   - list, show <id>: browse vacancies
//   - new, edit <id>, toggle <id>, delete <id>: manage vacancies (admin, manager)
//   - apply <id>, myapps: candidate applications
//   - allapps: every application (admin)
//   - login, register, logout, whoami
//   - back, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
