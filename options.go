package swf

type readConfig struct {
	limits Limits
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}
