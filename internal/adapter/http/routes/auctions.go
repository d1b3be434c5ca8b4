package routes

import (
	"delivery_auction/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuctions = "/auctions"
	PathBids     = "/bids"
	PathTasks    = "/tasks"
)

func addAuctionRoutes(rg *gin.RouterGroup, auctionHandler *handlers.AuctionHandler, bidHandler *handlers.BidHandler) {
	auctions := rg.Group(PathAuctions)
	{
		auctions.POST("", auctionHandler.CreateAuction)
		auctions.GET("/:auction_id", auctionHandler.GetAuction)
		auctions.POST("/:auction_id/bids", bidHandler.SubmitBid)
	}

	bids := rg.Group(PathBids)
	{
		bids.POST("/:bid_id/accept", bidHandler.AcceptBid)
	}

	tasks := rg.Group(PathTasks)
	{
		tasks.GET("/:task_id/auction", auctionHandler.GetResultsByTaskID)
		tasks.POST("/:task_id/auction/cancel", auctionHandler.CancelAuctionByTaskID)
	}
}
