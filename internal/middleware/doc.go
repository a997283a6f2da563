// Package middleware 提供了看板使用的 gin 中間件。
//
// 包含從 cookie 還原登入身分的 session 中間件、以 logrus 記錄請求的日誌中間件，
// 以及收集 Prometheus 指標的中間件。
package middleware
