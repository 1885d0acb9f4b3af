package crons

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	dto "github.com/prometheus/client_model/go"
	. "github.com/smartystreets/goconvey/convey"
	cache "gitlab.com/paramountdax-exchange/psp_dashboard/cache/auth"
	"gitlab.com/paramountdax-exchange/psp_dashboard/config"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
	"gitlab.com/paramountdax-exchange/psp_dashboard/monitor"
)

type fakeProbe struct {
	ok    bool
	err   error
	calls int
}

func (f *fakeProbe) CheckHealth(ctx context.Context) (bool, error) {
	f.calls++
	return f.ok, f.err
}

func gaugeValue() float64 {
	m := &dto.Metric{}
	_ = monitor.UpstreamUp.Write(m)
	return m.GetGauge().GetValue()
}

func TestCrons(t *testing.T) {
	Convey("Given the auth cache cron", t, func() {
		CronUpdateAuthCache()

		Convey("Every role gets its permissions", func() {
			So(cache.HasPerm(model.RoleUser, model.PermPaymentCreate), ShouldBeTrue)
			So(cache.HasPerm(model.RoleUser, model.PermBanksView), ShouldBeFalse)
			So(cache.HasPerm(model.RoleAdmin, model.PermBanksView), ShouldBeTrue)
			So(cache.HasPerm(model.RoleSuperAdmin, model.PermTransferCreate), ShouldBeTrue)
			So(cache.HasPerm(model.Role("root"), model.PermTransferCreate), ShouldBeFalse)
			So(cache.Permissions(model.RoleAdmin), ShouldResemble, []string{
				model.PermPaymentCreate, model.PermTransactionVerify, model.PermBanksView,
			})
		})
	})

	Convey("Given the upstream health cron", t, func() {
		Convey("A healthy provider sets the gauge to 1", func() {
			CronUpstreamHealth(&fakeProbe{ok: true})
			So(gaugeValue(), ShouldEqual, 1)
		})

		Convey("A failing provider sets the gauge to 0", func() {
			CronUpstreamHealth(&fakeProbe{err: errors.New("dial tcp: connection refused")})
			So(gaugeValue(), ShouldEqual, 0)
		})
	})

	Convey("Given a cron configuration", t, func() {
		probe := &fakeProbe{ok: true}

		Convey("Known jobs run once at startup", func() {
			err := Start(config.Crons{"upstream_health": "@every 1h", "unknown": "@every 1h"}, probe)
			defer Close()
			So(err, ShouldBeNil)
			So(probe.calls, ShouldEqual, 1)
		})

		Convey("An invalid schedule is an error", func() {
			err := Start(config.Crons{"upstream_health": "not a schedule"}, probe)
			defer Close()
			So(err, ShouldNotBeNil)
		})
	})
}
