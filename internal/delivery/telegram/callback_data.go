package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionRandom = "random"
	actionCopy   = "copy"
	actionList   = "list"
	actionRange  = "range"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildRandomCallback builds callback data for requesting a new random proverb.
func buildRandomCallback() string {
	return actionRandom
}

// buildCopyCallback builds callback data for the copy action on a proverb.
func buildCopyCallback(number int) string {
	return callbackData{
		Action: actionCopy,
		Params: []string{strconv.Itoa(number)},
	}.encode()
}

// buildListCallback builds callback data for opening a page of the full list.
func buildListCallback(page int) string {
	return callbackData{
		Action: actionList,
		Params: []string{strconv.Itoa(page)},
	}.encode()
}

// buildRangeCallback builds callback data for opening a page of a range listing.
func buildRangeCallback(page, from, to int) string {
	return callbackData{
		Action: actionRange,
		Params: []string{
			strconv.Itoa(page),
			strconv.Itoa(from),
			strconv.Itoa(to),
		},
	}.encode()
}
