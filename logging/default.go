package logging

import (
	"fmt"
	"log"
	"os"
)

// Default logs through the standard library log package: Debug and Info to
// stdout, Warn and Error to stderr. The zero minimum level is WarnLevel;
// a numerics library should stay quiet unless something needs attention.
type Default struct {
	out    *log.Logger
	errOut *log.Logger
	level  Level
	fields Fields
}

// NewDefault creates the stock logger.
func NewDefault() *Default {
	return &Default{
		out:    log.New(os.Stdout, "", log.LstdFlags),
		errOut: log.New(os.Stderr, "", log.LstdFlags),
		level:  WarnLevel,
		fields: make(Fields),
	}
}

func (d *Default) log(level Level, err error, msg string, fields []Fields) {
	if level < d.level {
		return
	}

	line := fmt.Sprintf("[%s] %s", level, msg)
	if err != nil {
		line += fmt.Sprintf(": %v", err)
	}
	if merged := mergeFields(d.fields, fields); len(merged) > 0 {
		line += fmt.Sprintf(" %+v", merged)
	}

	if level >= WarnLevel {
		d.errOut.Println(line)
		return
	}
	d.out.Println(line)
}

func (d *Default) Debug(msg string, fields ...Fields) { d.log(DebugLevel, nil, msg, fields) }
func (d *Default) Info(msg string, fields ...Fields)  { d.log(InfoLevel, nil, msg, fields) }
func (d *Default) Warn(msg string, fields ...Fields)  { d.log(WarnLevel, nil, msg, fields) }

func (d *Default) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields)
}

func (d *Default) WithFields(fields Fields) Logger {
	return &Default{
		out:    d.out,
		errOut: d.errOut,
		level:  d.level,
		fields: mergeFields(d.fields, []Fields{fields}),
	}
}

func (d *Default) SetLevel(level Level) { d.level = level }
