package seedcmder

// seedDocument is one knowledge-base entry seeded into the vector store.
type seedDocument struct {
	ID      string
	Title   string
	Content string
}

// seedDocuments is the built-in freight knowledge base. These are the
// reference documents the docs and support agents ground their answers on.
var seedDocuments = []seedDocument{
	{
		ID:    "kb-service-levels",
		Title: "Service levels",
		Content: `We offer three service levels for freight shipments. Express freight is our
fastest option, moving at roughly 90 km/h average with priority handling and
same-day pickup where available. Standard freight moves at roughly 70 km/h
average and is the default for most shipments. Eco freight is our most
economical option, consolidating loads to reduce cost and emissions, moving
at roughly 50 km/h average. Delivery estimates exclude weekends. Rush
surcharges apply to routes deliverable within 24 hours.`,
	},
	{
		ID:    "kb-pallet-limits",
		Title: "Pallet limits",
		Content: `Pallet limits: standard EUR pallets measure 120 x 80 cm and may be loaded to
a maximum height of 220 cm including the pallet. The maximum weight per
pallet is 1000 kg. A full truckload carries up to 33 EUR pallets or 24 tons,
whichever is reached first. Less-than-truckload shipments are billed per
loading metre. Overhanging freight must be declared at booking.`,
	},
	{
		ID:    "kb-hazardous-goods",
		Title: "Hazardous goods",
		Content: `Hazardous goods (ADR classes 1 through 9) require declaration at booking
time with the UN number, proper shipping name, and packing group. We do not
carry class 1 explosives or class 7 radioactive material. ADR surcharges
apply and transit times may be longer because hazardous loads cannot be
consolidated with general freight. Safety data sheets must accompany the
shipment documents.`,
	},
	{
		ID:    "kb-billing",
		Title: "Billing and payment",
		Content: `Invoices are issued on delivery confirmation and are payable within 30 days.
We accept bank transfer and major credit cards. Quoted prices include fuel
surcharges and road tolls but exclude VAT, waiting time beyond one hour at
loading or unloading, and re-delivery attempts. Credit accounts are
available for customers shipping more than ten loads per month.`,
	},
	{
		ID:    "kb-claims",
		Title: "Damage claims",
		Content: `Damage or loss must be noted on the consignment note at delivery and
reported in writing within 7 days. Claims require photographs of the damage,
the original consignment note, and a commercial invoice for the goods.
Liability follows CMR convention limits of 8.33 SDR per kilogram of gross
weight unless higher-value cover was purchased at booking.`,
	},
	{
		ID:    "kb-tracking",
		Title: "Shipment tracking",
		Content: `Every shipment receives a tracking ID at booking. Status updates move
through booked, picked up, in transit, out for delivery, and delivered.
Estimated arrival times are recalculated as the vehicle reports its
position. Delivery confirmation includes the recipient name and a timestamp.
Ask the assistant about your shipments to see live statuses on your
account.`,
	},
	{
		ID:    "kb-cancellation",
		Title: "Cancellation policy",
		Content: `Quotes are valid for 7 days from creation. Confirmed bookings may be
cancelled free of charge up to 24 hours before the scheduled pickup date.
Cancellations within 24 hours of pickup incur a fee of 25 percent of the
quoted price. No-show at loading is billed at 50 percent. To cancel a quote
in progress, just say cancel at any point in the conversation.`,
	},
	{
		ID:    "kb-packaging",
		Title: "Packaging requirements",
		Content: `Freight must be packaged to withstand normal handling, stacking, and
transit vibration. Goods on pallets must be strapped or stretch-wrapped and
must not overhang the pallet edge. Fragile goods require edge protection and
top boards. Unpackaged machinery needs lifting points marked and a weight
declaration. Improperly packaged freight may be refused at pickup.`,
	},
}
