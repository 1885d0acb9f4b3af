package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
	"gitlab.com/paramountdax-exchange/psp_dashboard/client"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	prev := output
	output = buf
	t.Cleanup(func() { output = prev })
	return buf
}

func TestPrintCheckout(t *testing.T) {
	Convey("Given an initialize answer", t, func() {
		buf := captureOutput(t)

		Convey("The checkout url is printed", func() {
			res := &client.Result{
				Status:  "success",
				Message: "Hosted Link",
				Data:    json.RawMessage(`{"checkout_url":"https://checkout.chapa.co/checkout/payment/abc"}`),
			}
			So(printCheckout(res), ShouldBeNil)
			So(buf.String(), ShouldEqual, "https://checkout.chapa.co/checkout/payment/abc\n")
		})

		Convey("An answer without a checkout url is an error", func() {
			res := &client.Result{Message: "Hosted Link", Data: json.RawMessage(`{}`)}
			err := printCheckout(res)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "no checkout url")
			So(buf.Len(), ShouldEqual, 0)
		})
	})
}

func TestPrintVerification(t *testing.T) {
	Convey("Given a verify answer", t, func() {
		buf := captureOutput(t)

		Convey("A verified payment prints its status and amount", func() {
			res := &client.Result{
				Status: "success",
				Raw:    json.RawMessage(`{"status":"success","data":{"status":"success","amount":100,"currency":"ETB","reference":"APabc","tx_ref":"tx-1"}}`),
			}
			So(printVerification(res), ShouldBeNil)
			So(buf.String(), ShouldEqual, "success: 100 ETB ref=APabc tx_ref=tx-1\n")
		})

		Convey("A declared failure prints the provider message", func() {
			res := &client.Result{
				Status:  "failed",
				Message: "Invalid transaction or Transaction not found",
				Raw:     json.RawMessage(`{"message":"Invalid transaction or Transaction not found","status":"failed","data":null}`),
			}
			So(printVerification(res), ShouldBeNil)
			So(buf.String(), ShouldEqual, "failed: Invalid transaction or Transaction not found\n")
		})
	})
}

func TestCustomizeLogger(t *testing.T) {
	prevLevel, prevFormat := LogLevel, LogFormat
	t.Cleanup(func() {
		LogLevel, LogFormat = prevLevel, prevFormat
		customizeLogger()
	})

	Convey("The log level drives the gin mode", t, func() {
		LogFormat = "json"
		LogLevel = "DEBUG"
		customizeLogger()
		So(gin.Mode(), ShouldEqual, gin.DebugMode)

		LogLevel = "verbose"
		customizeLogger()
		So(gin.Mode(), ShouldEqual, gin.ReleaseMode)
	})
}
