// Package api 組裝看板的 gin 路由。
//
// 這個包建立 gin.Engine，掛上日誌、指標與 session 中間件，
// 並將各路徑交給 handlers 包中的處理器。
package api
