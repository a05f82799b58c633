package internal

// The persistence client is generated from the schemas in ./schema into
// ./repo, which stays out of version control.
//
//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ./repo --feature sql/upsert ./schema
