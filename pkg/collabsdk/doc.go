// Package collabsdk is a Go client for the Connected collaboration service.
//
// The SDKClient covers unauthenticated operations (signup, login, health).
// Logging in yields a Session, which carries the access token for the
// project and invite operations.
//
//	client := collabsdk.NewSDKClient("http://localhost:8080")
//	session, err := client.Login(ctx, "alice", "password")
//	if err != nil { ... }
//
//	invite, err := session.ProjectInvite(ctx, projectID)
package collabsdk
