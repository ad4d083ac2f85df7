package quote

const (
	promptPackageDetails = "I can put together a freight quote for you. " +
		"What are you shipping? Please include the load type (full truckload, LTL, container, or bulk), " +
		"the weight in tons, and the volume in cubic meters."

	promptPackageRetry = "I couldn't pick out all the package details. " +
		"Please mention the load type (full truckload, LTL, container, or bulk), " +
		"a weight like \"12 tons\", and a volume like \"40 cubic meters\" in one message."

	promptAddresses = "Got it. Where is the shipment going? " +
		"Please give me the pickup and delivery addresses, e.g. " +
		"\"from 400 Industrial Way, Oakland, CA to 12 Dock St, Newark, NJ, pickup Monday at 9am\"."

	promptAddressRetry = "I couldn't identify both addresses. " +
		"Please phrase it as \"from <pickup address> to <delivery address>\"."

	promptServiceRetry = "Please pick one of the service levels: express, standard, or eco."

	promptConfirmRetry = "Please answer yes to create the quote request, or no to cancel."

	promptMissingInfo = "Some required information is missing from your quote, so I can't create it. " +
		"Let's start over — what are you shipping?"

	promptCancelled = "No problem, I've cancelled this quote request. " +
		"Just tell me when you'd like to start a new one."

	promptStoreFailure = "I encountered an error while saving your quote request. Please try again."
)
