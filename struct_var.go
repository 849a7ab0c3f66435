package args

import (
	"errors"
	"fmt"
	"reflect"
)

// fieldInfo contains info about a struct field that receives a parsed value
type fieldInfo struct {
	fieldName  string
	fieldValue reflect.Value
	// entry is nil for the field receiving the remaining arguments
	entry     *Entry
	isPointer bool
}

// SchemaFromStruct builds a schema from the fields of the struct `p` points to.
// Fields tagged with `arg:"x"` become arguments, their kind is defined by the field type:
// bool - Boolean, string - String, int - Integer, float64 - Double, []string - StringArray.
// Pointers to the scalar types are supported as well
func SchemaFromStruct(p any) (Schema, error) {
	structValue, err := getStructPointerElem(p)
	if err != nil {
		return nil, err
	}
	fields, err := collectFieldsInfo(structValue)
	if err != nil {
		return nil, err
	}
	schema := schemaOfFields(fields)
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return schema, nil
}

// ParseStruct parses `arguments` against the schema built by SchemaFromStruct and assigns the
// values of the found arguments to the struct fields. Fields of absent arguments keep their values.
// A []string field tagged with `argRest:"true"` receives Parser.Remaining()
func ParseStruct(p any, arguments []string) (*Parser, error) {
	structValue, err := getStructPointerElem(p)
	if err != nil {
		return nil, err
	}
	fields, err := collectFieldsInfo(structValue)
	if err != nil {
		return nil, err
	}
	parser, err := NewFromSchema(schemaOfFields(fields), arguments)
	if err != nil {
		return nil, err
	}
	for _, field := range fields {
		field.assign(parser)
	}
	return parser, nil
}

func schemaOfFields(fields []fieldInfo) Schema {
	var schema Schema
	for _, field := range fields {
		if field.entry != nil {
			schema = append(schema, *field.entry)
		}
	}
	return schema
}

func collectFieldsInfo(structValue reflect.Value) (res []fieldInfo, err error) {
	sValType := structValue.Type()
	for i := 0; i < structValue.NumField(); i++ {
		field := sValType.Field(i)
		fieldRole, err := getFieldRole(field)
		if err != nil {
			return nil, fmt.Errorf(`field "%s": %w`, field.Name, err)
		}
		if fieldRole == nil {
			continue
		}
		info, err := collectFieldInfo(field, structValue.Field(i), fieldRole)
		if err != nil {
			return nil, fmt.Errorf(`field "%s" tagged with "%s": %w`, field.Name, fieldRole.getRoleTagName(), err)
		}
		res = append(res, info)
	}
	return res, nil
}

func collectFieldInfo(
	field reflect.StructField,
	fieldValue reflect.Value,
	fieldRole fieldRole,
) (fieldInfo, error) {
	if !field.IsExported() {
		return fieldInfo{}, errors.New("field is not exported")
	}
	info := fieldInfo{
		fieldName:  field.Name,
		fieldValue: fieldValue,
	}
	switch role := fieldRole.(type) {
	case restArgsRole:
		if err := checkRestArgsFieldType(field.Type); err != nil {
			return fieldInfo{}, err
		}
	case namedArgRole:
		kind, isPointer, err := getFieldKind(field.Type)
		if err != nil {
			return fieldInfo{}, err
		}
		info.entry = &Entry{Name: role.name, Kind: kind}
		info.isPointer = isPointer
	}
	return info, nil
}

func getFieldKind(fieldType reflect.Type) (kind Kind, isPointer bool, err error) {
	if fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
		isPointer = true
	}
	switch fieldType.Kind() {
	case reflect.Bool:
		return Boolean, isPointer, nil
	case reflect.String:
		return String, isPointer, nil
	case reflect.Int:
		return Integer, isPointer, nil
	case reflect.Float64:
		return Double, isPointer, nil
	case reflect.Slice:
		if !isPointer && fieldType.Elem().Kind() == reflect.String {
			return StringArray, false, nil
		}
	}
	return kind, false, fmt.Errorf("unsupported field type %s", fieldType.String())
}

func checkRestArgsFieldType(fieldType reflect.Type) error {
	if fieldType.Kind() != reflect.Slice || fieldType.Elem().Kind() != reflect.String {
		return fmt.Errorf("[]string expected, got %s", fieldType.String())
	}
	return nil
}

func (f fieldInfo) assign(parser *Parser) {
	if f.entry == nil {
		f.fieldValue.Set(reflect.ValueOf(parser.Remaining()).Convert(f.fieldValue.Type()))
		return
	}
	name, _ := entryName(f.entry.Name)
	m, has := parser.parsed[name]
	if !has {
		return
	}
	val := reflect.ValueOf(m.value())
	if f.entry.Kind == StringArray {
		val = reflect.ValueOf(parser.GetStringArray(name))
	}
	if f.isPointer {
		ptr := reflect.New(f.fieldValue.Type().Elem())
		ptr.Elem().Set(val.Convert(ptr.Elem().Type()))
		f.fieldValue.Set(ptr)
		return
	}
	f.fieldValue.Set(val.Convert(f.fieldValue.Type()))
}

func getStructPointerElem(p any) (res reflect.Value, err error) {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return reflect.Value{}, fmt.Errorf("expected pointer to struct, got %T", p)
	}
	res = val.Elem()
	if res.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("expected pointer to struct, got %T", p)
	}
	return res, nil
}
