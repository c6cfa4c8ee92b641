package log

// LogClosure defers building an expensive log message until the logger
// decides to print it.
type LogClosure func() string

func (c LogClosure) ToString() string {
	return c()
}

func (c LogClosure) String() string {
	return c()
}

func InitLogClosure(c func() string) LogClosure {
	return LogClosure(c)
}
