// Package notifier fans order status changes out to stakeholders.
//
// Every send is classified as required or best-effort by services.NotificationRules.
// Required sends are issued first and concurrently; only when all of them succeed is
// the caller's commit run, and only after a successful commit are best-effort sends
// issued. The caller never sees best-effort failures as errors; they are logged and
// recorded in the DispatchResult.
//
// Example:
//
//	result, err := orchestrator.Dispatch(ctx, o, order.Pickup, uow.Commit)
//	if err != nil {
//	    // errors.Is(err, notifier.ErrVendorNotificationFailed): nothing was committed
//	}
//	client, _ := result.Outcome(order.Client)
//	_ = client.Succeeded
package notifier
