package utils

import "strconv"

func ConvertStringToInt64(v string) (int64, error) {
	res, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return -1, err
	}
	return res, nil
}
