// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Enumerants added by extension N live in the block starting at
// extBase + (N-1)*extBlockSize.
const (
	extBase      = 1000000000
	extBlockSize = 1000
)

// targetAPI is the API whose enumerants are collected.
const targetAPI = "vulkan"

type xmlRegistry struct {
	Enums      []xmlEnums     `xml:"enums"`
	Features   []xmlFeature   `xml:"feature"`
	Extensions []xmlExtension `xml:"extensions>extension"`
}

type xmlEnums struct {
	Name  string    `xml:"name,attr"`
	Enums []xmlEnum `xml:"enum"`
}

type xmlEnum struct {
	Name      string `xml:"name,attr"`
	Value     string `xml:"value,attr"`
	Offset    string `xml:"offset,attr"`
	Extnumber string `xml:"extnumber,attr"`
	Dir       string `xml:"dir,attr"`
	Extends   string `xml:"extends,attr"`
	Alias     string `xml:"alias,attr"`
	API       string `xml:"api,attr"`
}

type xmlRequire struct {
	API   string    `xml:"api,attr"`
	Enums []xmlEnum `xml:"enum"`
}

type xmlFeature struct {
	Name     string       `xml:"name,attr"`
	API      string       `xml:"api,attr"`
	Requires []xmlRequire `xml:"require"`
}

type xmlExtension struct {
	Name      string       `xml:"name,attr"`
	Number    string       `xml:"number,attr"`
	Supported string       `xml:"supported,attr"`
	Requires  []xmlRequire `xml:"require"`
}

// ParseXML reads enum from a vk.xml document.
//
// Fields are collected from the enum block first, then from the require
// blocks of every feature and extension in document order. Aliases,
// repeated requirements and items not available to Vulkan (disabled
// extensions, vulkansc-only features) are skipped.
func ParseXML(r io.Reader, enum string) (*Enum, error) {
	var doc xmlRegistry
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, newError(ErrInvalidDocument, err, "decode vk.xml")
	}

	c := &collector{
		enum: &Enum{Name: enum},
		seen: make(map[string]struct{}),
	}

	found := false
	for _, block := range doc.Enums {
		if block.Name != enum {
			continue
		}
		found = true
		for _, e := range block.Enums {
			if err := c.add(e, "", 0); err != nil {
				return nil, err
			}
		}
	}
	if !found {
		return nil, newError(ErrEnumNotFound, nil, "no <enums name=%q> block", enum)
	}

	for _, feature := range doc.Features {
		if !supports(feature.API) {
			continue
		}
		for _, req := range feature.Requires {
			if !supports(req.API) {
				continue
			}
			for _, e := range req.Enums {
				if e.Extends != enum {
					continue
				}
				if err := c.add(e, feature.Name, 0); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, ext := range doc.Extensions {
		if !supports(ext.Supported) {
			continue
		}
		var number int64
		if ext.Number != "" {
			n, err := strconv.ParseInt(ext.Number, 10, 64)
			if err != nil {
				return nil, newError(ErrInvalidValue, err, "extension %s number %q", ext.Name, ext.Number)
			}
			number = n
		}
		for _, req := range ext.Requires {
			if !supports(req.API) {
				continue
			}
			for _, e := range req.Enums {
				if e.Extends != enum {
					continue
				}
				if err := c.add(e, ext.Name, number); err != nil {
					return nil, err
				}
			}
		}
	}

	return c.enum, nil
}

// collector accumulates fields in order, dropping repeats.
type collector struct {
	enum *Enum
	seen map[string]struct{}
}

func (c *collector) add(e xmlEnum, origin string, extNumber int64) error {
	if e.Alias != "" {
		Logger().Debug("skipping alias", zap.String("name", e.Name), zap.String("alias", e.Alias))
		return nil
	}
	if !supports(e.API) {
		return nil
	}
	if _, dup := c.seen[e.Name]; dup {
		return nil
	}

	value, err := enumValue(e, extNumber)
	if err != nil {
		return err
	}

	c.seen[e.Name] = struct{}{}
	c.enum.Fields = append(c.enum.Fields, Field{
		Name:   e.Name,
		Value:  value,
		Origin: origin,
	})
	return nil
}

// enumValue computes an enumerant's value from its value or offset
// attributes. Offsets are relative to the block of the owning extension,
// or of extnumber when given.
func enumValue(e xmlEnum, extNumber int64) (int64, error) {
	if e.Value != "" {
		v, err := strconv.ParseInt(e.Value, 0, 64)
		if err != nil {
			return 0, newError(ErrInvalidValue, err, "%s value %q", e.Name, e.Value)
		}
		return v, nil
	}
	if e.Offset == "" {
		return 0, newError(ErrInvalidValue, nil, "%s has neither value nor offset", e.Name)
	}

	offset, err := strconv.ParseInt(e.Offset, 10, 64)
	if err != nil {
		return 0, newError(ErrInvalidValue, err, "%s offset %q", e.Name, e.Offset)
	}
	if e.Extnumber != "" {
		extNumber, err = strconv.ParseInt(e.Extnumber, 10, 64)
		if err != nil {
			return 0, newError(ErrInvalidValue, err, "%s extnumber %q", e.Name, e.Extnumber)
		}
	}
	if extNumber == 0 {
		return 0, newError(ErrInvalidValue, nil, "%s offset without extension number", e.Name)
	}

	v := extBase + (extNumber-1)*extBlockSize + offset
	if e.Dir == "-" {
		v = -v
	}
	return v, nil
}

// supports reports whether a comma separated api list includes Vulkan.
// An empty list applies to every API.
func supports(apis string) bool {
	if apis == "" {
		return true
	}
	for _, api := range strings.Split(apis, ",") {
		if strings.TrimSpace(api) == targetAPI {
			return true
		}
	}
	return false
}
