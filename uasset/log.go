package uasset

type LogFunc func(level int, format string, param ...interface{})

func (l LogFunc) log(level int, format string, param ...interface{}) {
	if l != nil {
		l(level, format, param...)
	}
}
