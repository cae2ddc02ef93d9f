package config

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/constant"
	"github.com/streamflix-cli/streamflix/filesystem"
	"github.com/streamflix-cli/streamflix/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Every registered field should have a default in viper", func() {
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("The content API should point at the hosted instance", func() {
			So(viper.GetString(key.APIBaseURL), ShouldEqual, constant.DefaultBaseURL)
			So(viper.GetString(key.APIKey), ShouldBeEmpty)
			So(viper.GetDuration(key.APITimeout), ShouldEqual, 0)
			So(viper.GetInt(key.SearchMinLength), ShouldEqual, 2)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("api.base_url"), ShouldEqual, "api_base_url")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the api key field", t, func() {
		field := Default[key.APIKey]

		Convey("Env should be prefixed with the app name", func() {
			So(field.Env(), ShouldEqual, "STREAMFLIX_API_KEY")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.APIKey)
		})

		Convey("MarshalJSON should report the type", func() {
			b, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(b), ShouldContainSubstring, `"type":"string"`)
		})
	})
}

func TestSelect(t *testing.T) {
	Convey("Given the registry", t, func() {
		Convey("A group name should select every key of the group", func() {
			fields, err := Select("search")
			So(err, ShouldBeNil)
			So(fields, ShouldHaveLength, 2)
			So(fields[0].Key, ShouldEqual, key.SearchMinLength)
			So(fields[1].Key, ShouldEqual, key.SearchSuggestions)
		})

		Convey("Keys and groups can be mixed without duplicates", func() {
			fields, err := Select("api", key.APIKey)
			So(err, ShouldBeNil)
			So(len(fields), ShouldEqual, 4)
			So(fields[0].Group(), ShouldEqual, "api")
		})

		Convey("No names should select everything", func() {
			fields, err := Select()
			So(err, ShouldBeNil)
			So(fields, ShouldHaveLength, len(Default))
		})

		Convey("Groups should include the player and api sections", func() {
			So(Groups(), ShouldContain, "api")
			So(Groups(), ShouldContain, "player")
			So(Groups(), ShouldContain, "search")
		})

		Convey("A typo should suggest the closest name", func() {
			_, err := Select("api.timout")

			var unknown *UnknownKeyError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Closest, ShouldEqual, key.APITimeout)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given raw values", t, func() {
		Convey("Ints, bools and lists should follow the default's type", func() {
			v, err := Parse(Default[key.SearchMinLength], []string{"3"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 3)

			v, err = Parse(Default[key.PlayerAutoplay], []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			v, err = Parse(Default[key.PlayerArgs], []string{"--fs", "--mute"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"--fs", "--mute"})
		})

		Convey("A negative int should be rejected", func() {
			_, err := Parse(Default[key.SearchMinLength], []string{"-1"})
			So(err, ShouldNotBeNil)
		})

		Convey("The timeout should be a duration", func() {
			_, err := Parse(Default[key.APITimeout], []string{"30s"})
			So(err, ShouldBeNil)

			_, err = Parse(Default[key.APITimeout], []string{"soon"})
			So(err, ShouldNotBeNil)
		})

		Convey("The player should be a known backend", func() {
			_, err := Parse(Default[key.Player], []string{"iina"})
			So(err, ShouldBeNil)

			_, err = Parse(Default[key.Player], []string{"vlc"})
			So(err, ShouldNotBeNil)
		})

		Convey("The base URL should be http or https", func() {
			_, err := Parse(Default[key.APIBaseURL], []string{"ftp://host/"})
			So(err, ShouldNotBeNil)
		})

		Convey("Missing values should be rejected", func() {
			_, err := Parse(Default[key.APIKey], nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSourceOf(t *testing.T) {
	Convey("Given the timeout field", t, func() {
		field := Default[key.APITimeout]

		Convey("Without overrides it should come from the defaults", func() {
			So(SourceOf(field), ShouldEqual, FromDefault)
		})

		Convey("An environment variable should win", func() {
			t.Setenv(field.Env(), "5s")
			So(SourceOf(field), ShouldEqual, FromEnv)
		})
	})
}

func TestSave(t *testing.T) {
	Convey("Given no config file", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Save should create it", func() {
			viper.Set(key.TUIItemSpacing, 2)
			So(Save(), ShouldBeNil)

			exists, err := filesystem.API().Exists(Path())
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}
