package main

/*
* CLI to inspect GraphBinary wire bytes
 */

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	graphbinary "github.com/apache/incubator-tinkerpop/gremlin-go"

	"github.com/op/go-logging"
	"github.com/satori/go.uuid"
	"github.com/urfave/cli"
)

var logger = graphbinary.SetupLogging("gbdump", logging.WARNING)

func PrintFatal(msg string, args ...interface{}) {
	PrintErr(msg, args...)
	os.Exit(1)
}

func PrintErr(msg string, args ...interface{}) {
	os.Stderr.WriteString(fmt.Sprintf(msg, args...) + "\n")
}

func inputBytes(c *cli.Context) (data []byte, err error) {
	arg := c.Args().First()
	if arg == "-" {
		if data, err = ioutil.ReadAll(os.Stdin); err != nil {
			return
		}
		arg = strings.TrimSpace(string(data))
	}
	if c.Bool("b64") {
		return base64.StdEncoding.DecodeString(arg)
	}
	return hex.DecodeString(strings.Replace(arg, " ", "", -1))
}

func describe(v interface{}) string {
	switch v.(type) {
	case nil:
		return graphbinary.Red("null")
	case string:
		return graphbinary.Green(fmt.Sprintf("%q", v))
	case graphbinary.Vertex, graphbinary.Edge, graphbinary.Path,
		graphbinary.Property, graphbinary.VertexProperty:
		return graphbinary.Cyan(fmt.Sprintf("%v", v))
	default:
		return graphbinary.Yellow(fmt.Sprintf("%v", v))
	}
}

func decodeCommand(c *cli.Context) (err error) {
	if c.NArg() < 1 {
		PrintFatal("usage: gbdump decode [--b64] <hex bytes or ->")
	}
	data, err := inputBytes(c)
	if err != nil {
		PrintFatal("could not read input: %s", err.Error())
	}
	logger.Debugf("decoding %d bytes", len(data))
	value, err := graphbinary.NewReader().ReadObject(data)
	if err != nil {
		PrintFatal(err.Error())
	}
	fmt.Printf("%s (%T)\n", describe(value), value)
	return
}

func encodeCommand(c *cli.Context) (err error) {
	if c.NArg() < 2 {
		PrintFatal("usage: gbdump encode <kind> <literal>")
	}
	kind, literal := c.Args().Get(0), c.Args().Get(1)
	var value interface{}
	switch kind {
	case "int":
		parsed, parseErr := strconv.ParseInt(literal, 10, 32)
		if parseErr != nil {
			PrintFatal(parseErr.Error())
		}
		value = int32(parsed)
	case "long":
		parsed, parseErr := strconv.ParseInt(literal, 10, 64)
		if parseErr != nil {
			PrintFatal(parseErr.Error())
		}
		value = parsed
	case "double":
		parsed, parseErr := strconv.ParseFloat(literal, 64)
		if parseErr != nil {
			PrintFatal(parseErr.Error())
		}
		value = parsed
	case "float":
		parsed, parseErr := strconv.ParseFloat(literal, 32)
		if parseErr != nil {
			PrintFatal(parseErr.Error())
		}
		value = float32(parsed)
	case "bool":
		parsed, parseErr := strconv.ParseBool(literal)
		if parseErr != nil {
			PrintFatal(parseErr.Error())
		}
		value = parsed
	case "string":
		value = literal
	case "uuid":
		parsed, parseErr := uuid.FromString(literal)
		if parseErr != nil {
			PrintFatal(parseErr.Error())
		}
		value = parsed
	case "null":
		value = nil
	default:
		PrintFatal("unknown kind %q, try int|long|double|float|bool|string|uuid|null", kind)
	}
	data, err := graphbinary.NewWriter().WriteObject(value)
	if err != nil {
		PrintFatal(err.Error())
	}
	fmt.Println(graphbinary.Magenta(hex.EncodeToString(data)))
	return
}

func main() {
	app := cli.NewApp()
	app.Name = "gbdump"
	app.Usage = "encode and inspect GraphBinary v1 values"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		cli.Command{
			Name:  "decode",
			Usage: "gbdump decode [--b64] <hex or -> -- decode one GraphBinary value and print it.",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "b64", Usage: "input is base64 rather than hex"},
			},
			Action: decodeCommand,
		},
		cli.Command{
			Name:   "encode",
			Usage:  "gbdump encode <kind> <literal> -- encode a primitive and print the wire bytes as hex.",
			Action: encodeCommand,
		},
	}
	app.Run(os.Args)
}
