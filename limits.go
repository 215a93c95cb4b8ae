package swf

type Limits struct {
	MaxBodySize uint64 // decompressed body bytes, checked before allocating
	MaxTagSize  uint64 // single tag payload bytes as declared in the tag header
}

func defaultLimits() Limits {
	return Limits{
		MaxBodySize: 256 << 20, // 256 MiB
		MaxTagSize:  128 << 20, // 128 MiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxBodySize == 0 {
		l.MaxBodySize = d.MaxBodySize
	}
	if l.MaxTagSize == 0 {
		l.MaxTagSize = d.MaxTagSize
	}
	return l
}
