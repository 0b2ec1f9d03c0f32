package domain

type ctxKey string

// IdentityCtxKey carries the resolved Identity through the request context.
const IdentityCtxKey ctxKey = "fs-identity"
