package contextkeys

// Custom key type avoids collisions with other context values.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB handle
// (the shared pool, or a transaction in tests) is stored.
const DBContextKey = contextKey("db")
