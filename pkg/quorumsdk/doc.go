// Package quorumsdk is the Go client for the Quorum organization service.
//
// Unauthenticated operations (checking and accepting invitations, submitting
// access requests) hang off SDKClient. Authenticated operations go through a
// Session created from a bearer access token.
//
// Basic usage:
//
//	client := quorumsdk.NewSDKClient("https://quorum.example.com")
//
//	details, err := client.CheckToken(ctx, token)
//	if err != nil {
//		var apiErr *quorumsdk.APIError
//		if errors.As(err, &apiErr) && apiErr.Code == quorumsdk.ErrorCodeTokenExpired {
//			// ask for a fresh invitation
//		}
//		return err
//	}
//
//	accepted, err := client.AcceptInvite(ctx, token, quorumsdk.AcceptInviteRequest{
//		Name:     "Ada",
//		Password: "correct horse battery staple",
//	})
//	// accepted.TargetPath is "/{organizationSlug}" or "/home"
//
// The inviteflow subpackage-style controller in this package (InviteFlow)
// drives the same two calls as an explicit state machine for UI clients.
package quorumsdk
