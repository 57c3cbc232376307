package ptr

func ToString(val string) *string {
	return &val
}

func ToInt(val int) *int {
	return &val
}

func ToUint64(val uint64) *uint64 {
	return &val
}

func ToFloat64(val float64) *float64 {
	return &val
}
