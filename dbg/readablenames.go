package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// This converts arbitrary comparable values into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not a
// problem unless you're actually using it. This is helpful for telling points
// apart in drawings and terminal output.

var (
	memo   map[interface{}]string
	memoMu sync.Mutex
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Like Name, but coloured for the terminal. The colour is picked from the name
// so that it stays stable for the same object.
func ColorName(obj interface{}) string {
	name := Name(obj)
	var sum int
	for _, r := range name {
		sum += int(r)
	}
	switch sum % 4 {
	case 0:
		return aurora.Cyan(name).String()
	case 1:
		return aurora.Magenta(name).String()
	case 2:
		return aurora.Green(name).String()
	default:
		return aurora.Yellow(name).String()
	}
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
