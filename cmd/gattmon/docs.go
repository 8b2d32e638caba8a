package main

// General API documentation for swaggo. Build with -tags=swagger to serve it.
//
// @title           gattmon API
// @version         1.0
// @description     Recent GATT events and profile state of a gattmon process.
//
// @BasePath  /
//
// @schemes http
