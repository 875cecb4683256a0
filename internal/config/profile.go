// Package config loads HCL profile files that pre-fill the calculator form.
//
// A profile looks like:
//
//	weight   = 70
//	height   = 175
//	age      = 30
//	sex      = "male"
//	activity = "moderate"
//
// Every attribute is optional.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"bmr-calculator/internal/format"
	"bmr-calculator/internal/model"
)

// Profile is the decoded content of a profile file.
type Profile struct {
	Weight   *float64 `hcl:"weight,optional"`
	Height   *float64 `hcl:"height,optional"`
	Age      *float64 `hcl:"age,optional"`
	Sex      *string  `hcl:"sex,optional"`
	Activity *string  `hcl:"activity,optional"`
}

// LoadProfile parses and decodes the profile at path.
func LoadProfile(path string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, diags)
	}
	return decodeProfile(file, path)
}

// ParseProfile decodes a profile from source bytes; filename is used in
// diagnostics only.
func ParseProfile(src []byte, filename string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", filename, diags)
	}
	return decodeProfile(file, filename)
}

func decodeProfile(file *hcl.File, filename string) (*Profile, error) {
	var p Profile
	if diags := gohcl.DecodeBody(file.Body, nil, &p); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile %s: %w", filename, diags)
	}
	return &p, nil
}

// Apply copies every attribute set in p onto f. Numbers are written back as
// text so that they pass through the same validation as typed input.
func (p *Profile) Apply(f *model.InputFields) error {
	if p.Weight != nil {
		f.Weight = format.FormatNumber(*p.Weight)
	}
	if p.Height != nil {
		f.Height = format.FormatNumber(*p.Height)
	}
	if p.Age != nil {
		f.Age = format.FormatNumber(*p.Age)
	}
	if p.Sex != nil {
		sex, err := model.ParseSex(*p.Sex)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		f.Sex = sex
	}
	if p.Activity != nil {
		level, err := model.ParseActivityLevel(*p.Activity)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		f.ActivityLevel = level
	}
	return nil
}
