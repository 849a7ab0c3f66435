package args

import (
	"fmt"
	"reflect"
	"strconv"
)

const (
	argNameTag = "arg"
	argRestTag = "argRest"
)

type fieldRole interface {
	getRoleTagName() string
}

type namedArgRole struct {
	name string
}

func (r namedArgRole) getRoleTagName() string {
	return argNameTag
}

// restArgsRole marks a []string field that receives Parser.Remaining()
type restArgsRole struct {
}

func (r restArgsRole) getRoleTagName() string {
	return argRestTag
}

func getFieldRole(field reflect.StructField) (fieldRole, error) {
	tags := field.Tag

	name, hasName := tags.Lookup(argNameTag)
	if name == "-" {
		name = ""
		hasName = false
	}
	isRest, _, err := getBoolTag(tags, argRestTag)
	if err != nil {
		return nil, err
	}

	switch {
	case hasName && isRest:
		return nil, fmt.Errorf(`only one of "%s", "%s" tags can be used`, argNameTag, argRestTag)
	case hasName:
		return namedArgRole{name: name}, nil
	case isRest:
		return restArgsRole{}, nil
	}
	return nil, nil
}

func getBoolTag(tags reflect.StructTag, tagName string) (val bool, exists bool, err error) {
	var strVal string
	if strVal, exists = tags.Lookup(tagName); strVal != "" {
		if val, err = strconv.ParseBool(strVal); err != nil {
			return false, exists,
				fmt.Errorf(`invalid "%s" tag bool value: "%s"`, tagName, strVal)
		}
	}
	return val, exists, nil
}
