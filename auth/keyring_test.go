package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestKeyring(t *testing.T) {
	Convey("Given an empty keyring", t, func() {
		_ = DeleteKey()

		Convey("Reading should report no key", func() {
			_, err := GetKey()
			So(err, ShouldEqual, ErrNoKey)
		})

		Convey("Storing a key should make it readable", func() {
			So(SetKey("  secret-key "), ShouldBeNil)

			got, err := GetKey()
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "secret-key")

			Convey("And deleting should remove it", func() {
				So(DeleteKey(), ShouldBeNil)
				So(DeleteKey(), ShouldEqual, ErrNoKey)
			})
		})

		Convey("An empty key should be rejected", func() {
			So(SetKey("   "), ShouldNotBeNil)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given key sources", t, func() {
		_ = DeleteKey()
		defer viper.Set(key.APIKey, "")

		Convey("Without any key nothing should resolve", func() {
			viper.Set(key.APIKey, "")
			So(Resolve().IsAbsent(), ShouldBeTrue)
		})

		Convey("The keyring should be used when config is empty", func() {
			viper.Set(key.APIKey, "")
			So(SetKey("from-keyring"), ShouldBeNil)

			apiKey, origin := ResolveWithOrigin()
			So(apiKey.MustGet(), ShouldEqual, "from-keyring")
			So(origin, ShouldEqual, FromKeyring)
		})

		Convey("Config should take precedence over the keyring", func() {
			So(SetKey("from-keyring"), ShouldBeNil)
			viper.Set(key.APIKey, "from-config")

			apiKey, origin := ResolveWithOrigin()
			So(apiKey.MustGet(), ShouldEqual, "from-config")
			So(origin, ShouldEqual, FromConfig)
		})
	})
}

func TestMask(t *testing.T) {
	Convey("Masking should keep only the last four characters", t, func() {
		So(Mask("abcdefgh"), ShouldEqual, "****efgh")
		So(Mask("abc"), ShouldEqual, "***")
	})
}
