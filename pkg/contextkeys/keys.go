package contextkeys

// Custom type so our keys cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB
// (pool or transaction) is stored in the context.
const DBContextKey = contextKey("db")
