package config_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/okian/scout/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.Workers, convey.ShouldEqual, runtime.NumCPU()*2)
			convey.So(cfg.QualifyingPA, convey.ShouldEqual, 300)
			convey.So(cfg.QualifyingInnings, convey.ShouldEqual, 60)
			convey.So(cfg.LeaderboardSize, convey.ShouldEqual, 100)
			convey.So(cfg.RenormalizeMissing, convey.ShouldBeFalse)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
