package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"fruit-salad/pkg/util"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

const (
	ModeLinked = "linked"
	ModeDeque  = "deque"
)

var Modes = []string{ModeLinked, ModeDeque}

var defaultFruits = []string{"Arbutus", "Loquat", "Strawberry Tree Berry"}

type SaladProperties struct {
	RunID         string   `cfg:"runid"`
	Mode          string   `cfg:"mode"`
	Fruits        []string `cfg:"fruits"`
	Seed          int      `cfg:"seed"`
	LogLevel      string   `cfg:"loglevel"`
	LogDir        string   `cfg:"logdir"`
	EnableFileLog bool     `cfg:"filelog"`
	Color         bool     `cfg:"color"`

	// config file path
	CfPath string `cfg:"cf,omitempty"`
}

var Properties = Default()

// Default 没有配置文件时使用的配置
func Default() *SaladProperties {
	return &SaladProperties{
		Mode:     ModeLinked,
		Fruits:   slices.Clone(defaultFruits),
		LogLevel: "warn",
		LogDir:   "./logs",
		Color:    true,
	}
}

func parse(src io.Reader) (*SaladProperties, error) {
	config := Default()

	// read config file
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 { // separator found
			key := line[0:pivot]
			value := strings.Trim(line[pivot+1:], " ")
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// parse format
	t := reflect.TypeOf(config)
	v := reflect.ValueOf(config)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok || strings.TrimLeft(key, " ") == "" {
			key = field.Name
		}
		key = strings.Split(key, ",")[0]
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		// fill config
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int:
			intValue, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("config %s: %w", key, err)
			}
			fieldVal.SetInt(intValue)
		case reflect.Bool:
			boolValue := "yes" == value
			fieldVal.SetBool(boolValue)
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.String {
				slice := strings.Split(value, ",")
				for j := range slice {
					slice[j] = strings.TrimSpace(slice[j])
				}
				fieldVal.Set(reflect.ValueOf(slice))
			}
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (p *SaladProperties) Validate() error {
	if !slices.Contains(Modes, p.Mode) {
		return fmt.Errorf("unknown mode %q, expected one of %s", p.Mode, strings.Join(Modes, ", "))
	}
	return nil
}

// SetUpConfig 读取配置文件, 文件不存在时使用默认配置
func SetUpConfig(filename string) error {
	props := Default()
	if filename != "" {
		file, err := os.Open(filename)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return err
		default:
			defer util.Close(file)
			props, err = parse(file)
			if err != nil {
				return err
			}
			if configFilePath, err := filepath.Abs(filename); err == nil {
				props.CfPath = configFilePath
			}
		}
	}
	props.RunID = uuid.NewString()
	if props.LogDir == "" {
		props.LogDir = "."
	}
	Properties = props
	return nil
}
